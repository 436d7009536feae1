package config

// LocalMediaProvider stores uploads on the local filesystem
const LocalMediaProvider = "local"

// AzureMediaProvider stores uploads in an Azure Blob Storage container
const AzureMediaProvider = "azure"

// CloudinaryMediaProvider stores uploads on the Cloudinary image host
const CloudinaryMediaProvider = "cloudinary"
