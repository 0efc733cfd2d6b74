// Package download saves the image shown in the viewer to the download
// directory. Bytes come from the same fetcher the preloader uses, the file
// name is derived from the address and the active set label, and files are
// written through a temporary .part file renamed into place.
package download
