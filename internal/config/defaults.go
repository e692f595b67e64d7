package config

const (
	defaultWorkingDir = "~/mediasort"
	defaultImagesDir  = "Images"
	defaultVideosDir  = "Videos"
	defaultUnknownDir = "Unknown"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			WorkingDir: defaultWorkingDir,
		},
		Library: Library{
			ImagesDir:  defaultImagesDir,
			VideosDir:  defaultVideosDir,
			UnknownDir: defaultUnknownDir,
		},
		Behavior: Behavior{
			MoveFiles:      false,
			FastParse:      false,
			Recursive:      true,
			ReportProgress: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
