package docling

import "time"

// EngineConfig is the normalized form of a request's docling_options,
// produced by docling/options.Normalize and consumed by the Engine
// implementation a worker is configured with.
type EngineConfig struct {
	// VLM (vision-language model) options.
	VLMModel                 string
	DoPictureDescription      bool
	ImagesScale               float64
	CustomPrompt              string
	VLMPrompt                 string
	VLMBatchSize              int
	VLMPictureAreaThreshold   float64

	// Enrichment options.
	DoPictureClassification bool
	DoCodeEnrichment        bool
	DoFormulaEnrichment     bool
	DoTableStructure        bool
	DoOCR                   bool

	// OCR options.
	OCRLanguages            []string
	ForceFullPageOCR        bool
	OCRBitmapAreaThreshold  float64
	OCRUseGPU               bool
	OCRConfidenceThreshold  float64
	OCRModelStorageDirectory string
	OCRRecogNetwork         string
	OCRDownloadEnabled      bool

	// Table structure options.
	TableDoCellMatching bool
	TableMode           string

	// Image and page options.
	GeneratePictureImages bool
	GeneratePageImages    bool
	GenerateTableImages   bool

	// Core pipeline options.
	CreateLegacyOutput     bool
	DocumentTimeout        time.Duration
	EnableRemoteServices   bool
	AllowExternalPlugins   bool
	ArtifactsPath          string
	ForceBackendText       bool
	GenerateParsedPages    bool

	// Performance options.
	AcceleratorDevice          string
	NumThreads                 int
	CUDAUseFlashAttention2     bool

	// Input formats this request's document may be interpreted as.
	InputFormats []string

	// ASR (audio) options, enabled only when DoASR is set.
	DoASR       bool
	ASRModel    string
	ASRLanguage string

	// ConverterOptions carries knobs that configure the converter
	// invocation itself rather than its pipeline.
	ConverterOptions ConverterOptions
}

// ConverterOptions configures the converter invocation rather than its
// document-processing pipeline.
type ConverterOptions struct {
	RaisesOnError bool
	DebugMode     bool
	MaxFileSize   int64
}

// DefaultEngineConfig returns the configuration applied when a request
// carries no options descriptor at all.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		DoOCR:            true,
		DoTableStructure: true,
		InputFormats:     []string{"pdf"},
	}
}
