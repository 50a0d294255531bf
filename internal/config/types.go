package config

// Config describes the provisioning layout for one project. Every field has
// a compiled default so running without a pyboot.yaml works out of the box.
type Config struct {
	// EnvDir is the virtual environment directory, relative to the project root.
	EnvDir string `yaml:"env_dir" validate:"required"`
	// Wheelhouse is the local package cache holding prebuilt wheels.
	Wheelhouse string `yaml:"wheelhouse" validate:"required"`
	// NativePackage is the pip name of the native technical-analysis library.
	NativePackage string `yaml:"native_package" validate:"required"`
	// NativeImportDir is the site-packages directory the native library
	// creates, used as the already-installed check.
	NativeImportDir string `yaml:"native_import_dir" validate:"required"`
	// Remote is the git remote pulled during source sync.
	Remote string `yaml:"remote" validate:"required"`
	// Manifests are the selectable dependency groups, in prompt order.
	Manifests []Manifest `yaml:"manifests" validate:"required,min=1,max=26,dive"`
	// UICommand is the application's own UI install command. The first
	// element is resolved inside the environment's script directory.
	UICommand []string `yaml:"ui_command" validate:"required,min=1,dive,required"`
	// WaitForKey blocks for a keypress before a successful exit.
	WaitForKey bool `yaml:"wait_for_key"`
}

// Manifest is one installable dependency group: a prompt label and the
// requirements file it points at.
type Manifest struct {
	Label string `yaml:"label" validate:"required,max=80"`
	File  string `yaml:"file" validate:"required"`
}

// Default returns the compiled provisioning layout used when no pyboot.yaml
// is present.
func Default() *Config {
	return &Config{
		EnvDir:          ".venv",
		Wheelhouse:      "wheelhouse",
		NativePackage:   "TA-Lib",
		NativeImportDir: "talib",
		Remote:          "origin",
		Manifests: []Manifest{
			{Label: "Core dependencies", File: "requirements.txt"},
			{Label: "Development extras", File: "requirements-dev.txt"},
			{Label: "Plotting extras", File: "requirements-plot.txt"},
		},
		UICommand:  []string{"app", "install-ui"},
		WaitForKey: true,
	}
}
