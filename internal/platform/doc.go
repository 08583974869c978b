// Package platform contains OS integration for saved documents: the
// downloads directory, collision-free save paths, and reveal/open helpers.
package platform
