package model

import (
	"strconv"
)

// SetName identifies one of the parallel image collections
type SetName string

const (
	// SetOriginal holds the unmodified images
	SetOriginal SetName = "original"

	// SetCutout holds the background-removed variants
	SetCutout SetName = "cutout"
)

// String returns the string representation of SetName
func (sn SetName) String() string {
	return string(sn)
}

// ImageSet describes a numbered image collection rooted at BasePath
type ImageSet struct {
	Name     SetName `yaml:"name"`
	BasePath string  `yaml:"path"`
	Label    string  `yaml:"label,omitempty"` // display label used when no translation exists
}

// Address returns the location of item index, formed as BasePath + index + ext
func (s ImageSet) Address(index int, ext string) string {
	return s.BasePath + strconv.Itoa(index) + ext
}

// ImageSets is an ordered list of sets; order defines preload and tab order
type ImageSets []ImageSet

// Find returns the set with the given name
func (ss ImageSets) Find(name SetName) (ImageSet, bool) {
	for _, s := range ss {
		if s.Name == name {
			return s, true
		}
	}
	return ImageSet{}, false
}

// Names returns set names in order
func (ss ImageSets) Names() []SetName {
	names := make([]SetName, 0, len(ss))
	for _, s := range ss {
		names = append(names, s.Name)
	}
	return names
}

// DefaultSets returns the original/cutout pair rooted at the given paths
func DefaultSets(originalPath, cutoutPath string) ImageSets {
	return ImageSets{
		{Name: SetOriginal, BasePath: originalPath, Label: "Original"},
		{Name: SetCutout, BasePath: cutoutPath, Label: "Cutout"},
	}
}
