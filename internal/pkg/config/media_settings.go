package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MediaSettings configures where uploaded files are stored
type MediaSettings struct {
	Provider         string   `yaml:"provider" env:"MEDIA_PROVIDER" validate:"required,oneof=local azure cloudinary"`
	MaxUploadBytes   int64    `yaml:"max_upload_bytes" validate:"required,gt=0"`
	AllowedTypes     []string `yaml:"allowed_types" env:"MEDIA_ALLOWED_TYPES" validate:"required,min=1"`
	LocalDir         string   `yaml:"local_dir" env:"UPLOAD_DIR" validate:"required_if=Provider local"`
	PublicBaseURL    string   `yaml:"public_base_url" env:"PUBLIC_BASE_URL" validate:"required_if=Provider local"`
	ConnectionString string   `yaml:"connection_string" env:"AZURE_STORAGE_CONNECTION_STRING" validate:"required_if=Provider azure"`
	ContainerName    string   `yaml:"container_name" env:"AZURE_STORAGE_CONTAINER" validate:"required_if=Provider azure"`
	CloudinaryURL    string   `yaml:"cloudinary_url" env:"CLOUDINARY_URL" validate:"required_if=Provider cloudinary"`
	Folder           string   `yaml:"folder" env:"MEDIA_FOLDER"`
}

// Validate checks that all fields in MediaSettings are valid
func (s *MediaSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for MediaSettings: %w", err)
	}
	return nil
}
