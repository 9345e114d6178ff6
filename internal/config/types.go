package config

import (
	"github.com/atelierlabs/atelier/internal/model"
)

// Brief represents the full brief document supplied to the generator.
type Brief struct {
	Version     string   `yaml:"version" validate:"required,semver"`
	Name        string   `yaml:"name" validate:"required,min=1,max=100"`
	ProductIdea string   `yaml:"product_idea" validate:"required,min=1"`
	TargetUsers []string `yaml:"target_users" validate:"required,min=1,dive,target_user"`
	BrandTraits []string `yaml:"brand_traits,omitempty" validate:"omitempty,dive,brand_trait"`
	Platforms   []string `yaml:"platforms" validate:"required,min=1,dive,platform"`
	Settings    Settings `yaml:"settings,omitempty"`
}

// Settings holds optional generation parameters.
type Settings struct {
	PrimaryColor string `yaml:"primary_color,omitempty" validate:"omitempty,hex_color"`
	DarkMode     bool   `yaml:"dark_mode,omitempty"`
	OutputDir    string `yaml:"output_dir,omitempty"`
	Verbose      bool   `yaml:"verbose,omitempty"`
}

// ToModel converts the validated document into the pipeline's input record.
// Call only after Validate has succeeded; enum conversion cannot fail then.
func (b *Brief) ToModel() (model.Brief, error) {
	users, err := model.ParseTargetUsers(b.TargetUsers)
	if err != nil {
		return model.Brief{}, err
	}
	traits, err := model.ParseBrandTraits(b.BrandTraits)
	if err != nil {
		return model.Brief{}, err
	}
	platforms, err := model.ParsePlatforms(b.Platforms)
	if err != nil {
		return model.Brief{}, err
	}

	return model.Brief{
		ProductIdea:  b.ProductIdea,
		TargetUsers:  users,
		BrandTraits:  traits,
		Platforms:    platforms,
		PrimaryColor: b.Settings.PrimaryColor,
		DarkMode:     b.Settings.DarkMode,
	}, nil
}
