package config

import "fmt"

type Config struct {
	Gemini    GeminiConfig    `yaml:"gemini"`
	Paths     PathsConfig     `yaml:"paths"`
	Storage   StorageConfig   `yaml:"storage"`
	Recording RecordingConfig `yaml:"recording"`
	Summary   SummaryConfig   `yaml:"summary"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type GeminiConfig struct {
	TranscribeModel string `yaml:"transcribe_model"`
	SummarizeModel  string `yaml:"summarize_model"`
	// SourceLanguage is a hint for transcription ("auto" lets the model detect).
	SourceLanguage string `yaml:"source_language"`
}

type PathsConfig struct {
	Inbox  string `yaml:"inbox"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type StorageConfig struct {
	// Backend selects the key-value store implementation: "file" or "memory".
	// Chosen once at startup, never probed per call.
	Backend  string `yaml:"backend"`
	StateDir string `yaml:"state_dir"`
}

type RecordingConfig struct {
	// Device is the ffmpeg input device spec, e.g. ":default" for avfoundation
	// or "default" for pulse.
	Device     string `yaml:"device"`
	InputFlag  string `yaml:"input_flag"`
	SampleRate int    `yaml:"sample_rate"`
}

type SummaryConfig struct {
	Detail            string `yaml:"detail"` // brief | standard | detailed
	OutputLanguage    string `yaml:"output_language"`
	Tone              string `yaml:"tone"` // neutral | friendly | formal
	PrioritizeActions bool   `yaml:"prioritize_actions"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) Validate() error {
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = "file"
	}
	if c.Storage.Backend != "file" && c.Storage.Backend != "memory" {
		return fmt.Errorf("storage.backend must be \"file\" or \"memory\", got %q", c.Storage.Backend)
	}
	if c.Gemini.TranscribeModel == "" {
		c.Gemini.TranscribeModel = "gemini-2.5-flash"
	}
	if c.Gemini.SummarizeModel == "" {
		c.Gemini.SummarizeModel = "gemini-2.5-flash"
	}
	if c.Gemini.SourceLanguage == "" {
		c.Gemini.SourceLanguage = "auto"
	}
	if c.Recording.InputFlag == "" {
		c.Recording.InputFlag = defaultInputFlag()
	}
	if c.Recording.Device == "" {
		c.Recording.Device = defaultDevice()
	}
	if c.Recording.SampleRate == 0 {
		c.Recording.SampleRate = 16000
	}
	if c.Summary.Detail == "" {
		c.Summary.Detail = "standard"
	}
	switch c.Summary.Detail {
	case "brief", "standard", "detailed":
	default:
		return fmt.Errorf("summary.detail must be brief, standard or detailed, got %q", c.Summary.Detail)
	}
	if c.Summary.Tone == "" {
		c.Summary.Tone = "neutral"
	}
	switch c.Summary.Tone {
	case "neutral", "friendly", "formal":
	default:
		return fmt.Errorf("summary.tone must be neutral, friendly or formal, got %q", c.Summary.Tone)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
