// Package git inspects the repository a blog lives in: the origin remote,
// the branch it publishes from, and the forge edit-link pattern derived
// from them.
package git
