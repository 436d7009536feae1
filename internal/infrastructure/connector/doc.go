// Package connector stores uploaded media with a hosting provider: the
// local filesystem, Azure Blob Storage or Cloudinary.
package connector
