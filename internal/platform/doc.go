package platform

// Package platform contains OS/platform integration: filesystem helpers,
// OS open/reveal, image source fetching over HTTP or the local filesystem,
// and image decoding and thumbnailing.
