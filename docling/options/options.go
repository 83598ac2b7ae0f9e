// Package options normalizes a request's raw docling_options JSON into a
// docling.EngineConfig an Engine implementation can act on.
//
// The source this protocol is modeled on accepts two option shapes: a flat
// "simple" object whose keys are a fixed, known vocabulary of pipeline
// knobs, and a "rich" object carrying nested, pass-through Docling
// constructs (format_options, accelerator_options) that this system does
// not attempt to interpret structurally. The two shapes are distinguished
// by key-set disjointness: an object with any key from the simple
// vocabulary and none from the rich vocabulary is simple.
package options

import (
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"github.com/chris-alexander-pop/system-design-library/docling"
	"github.com/chris-alexander-pop/system-design-library/pkg/errors"
)

func durationFromSeconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// simpleKeys is the exact vocabulary of flat pipeline options this
// normalizer understands, transcribed from the fields the conversion
// engine this system wraps actually exposes.
var simpleKeys = map[string]bool{
	// VLM options.
	"vlm_model": true, "do_picture_description": true, "images_scale": true,
	"custom_prompt": true, "vlm_prompt": true, "vlm_batch_size": true,
	"vlm_picture_area_threshold": true, "vlm_generation_config": true,

	// Enrichment options.
	"do_picture_classification": true, "do_code_enrichment": true,
	"do_formula_enrichment": true, "do_table_structure": true, "do_ocr": true,

	// OCR options.
	"ocr_languages": true, "force_full_page_ocr": true,
	"ocr_bitmap_area_threshold": true, "ocr_use_gpu": true,
	"ocr_confidence_threshold": true, "ocr_model_storage_directory": true,
	"ocr_recog_network": true, "ocr_download_enabled": true,

	// Table structure options.
	"table_do_cell_matching": true, "table_mode": true,

	// Image and page options.
	"generate_picture_images": true, "generate_page_images": true,
	"generate_table_images": true,

	// Core pipeline options.
	"create_legacy_output": true, "document_timeout": true,
	"enable_remote_services": true, "allow_external_plugins": true,
	"artifacts_path": true, "force_backend_text": true,
	"generate_parsed_pages": true,

	// Performance options.
	"accelerator_device": true, "num_threads": true,
	"cuda_use_flash_attention2": true,

	// Input format support.
	"input_formats": true,

	// ASR (audio) options, not present in the wire vocabulary this system
	// was distilled from but carried over from the fuller source worker.
	"do_asr": true, "asr_model": true, "asr_language": true,

	// Converter-level knobs.
	"timeout": true, "raises_on_error": true, "debug_mode": true,
	"max_file_size": true,
}

// complexKeys mark a descriptor as "rich": nested, pass-through Docling
// constructs this normalizer does not interpret.
var complexKeys = map[string]bool{
	"format_options": true, "accelerator_options": true,
}

var asrModelAliases = map[string]string{
	"whisper_tiny": "whisper_tiny", "whisper_base": "whisper_base",
	"whisper_small": "whisper_small", "whisper_medium": "whisper_medium",
	"whisper_large": "whisper_large",
}

// VLM repo identifiers a vlm_model value canonicalizes to.
const (
	vlmRepoGranite = "ibm-granite/granite-vision-3.1-2b-preview"
	vlmRepoSmolVLM = "HuggingFaceTB/SmolVLM-256M-Instruct"
)

// canonicalizeVLMModel maps a requested vlm_model value to its canonical
// repo identifier: granite and smolvlm/smoldocling map to their respective
// models, and anything else falls back to Granite with a warning.
func canonicalizeVLMModel(requested string) (canonical string, warning string) {
	switch lowercase(requested) {
	case "granite":
		return vlmRepoGranite, ""
	case "smolvlm", "smoldocling":
		return vlmRepoSmolVLM, ""
	default:
		return vlmRepoGranite, "docling_options.vlm_model value \"" + requested + "\" is not recognized, defaulting to Granite"
	}
}

// Normalize decodes raw and returns an EngineConfig reflecting it. A nil or
// empty raw yields docling.DefaultEngineConfig with no warnings.
//
// mode controls what happens when raw looks "rich" (carries
// format_options/accelerator_options): Permissive returns the default
// config with a warning; Strict returns an EnvelopeInvalid error, since the
// worker has no machinery to interpret those nested constructs and silently
// ignoring an operator's explicit configuration is worse than refusing it.
func Normalize(raw json.RawMessage, mode docling.NormalizeMode) (*docling.EngineConfig, []string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return docling.DefaultEngineConfig(), nil, nil
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		if mode == docling.NormalizeModePermissive {
			return docling.DefaultEngineConfig(), []string{"docling_options is not a JSON object; falling back to defaults"}, nil
		}
		return nil, nil, errors.New(string(docling.KindEnvelopeInvalid), "docling_options is not a JSON object", err)
	}

	if !isSimple(decoded) {
		if mode == docling.NormalizeModePermissive {
			return docling.DefaultEngineConfig(), []string{"docling_options uses an unsupported rich shape; falling back to defaults"}, nil
		}
		return nil, nil, errors.New(string(docling.KindEnvelopeInvalid), "docling_options uses an unsupported rich shape (format_options/accelerator_options)", nil)
	}

	return convertSimple(decoded)
}

// isSimple reports whether options looks like the flat vocabulary this
// normalizer understands: at least one recognized simple key, and no
// complex key at all.
func isSimple(options map[string]json.RawMessage) bool {
	hasSimple := false
	hasComplex := false
	for k := range options {
		if simpleKeys[k] {
			hasSimple = true
		}
		if complexKeys[k] {
			hasComplex = true
		}
	}
	return hasSimple && !hasComplex
}

func convertSimple(options map[string]json.RawMessage) (*docling.EngineConfig, []string, error) {
	cfg := docling.DefaultEngineConfig()
	var warnings []string

	var unknown []string
	for k := range options {
		if !simpleKeys[k] {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		warnings = append(warnings, "docling_options."+k+" is not a recognized option, ignoring")
	}

	getBool := func(key string) (bool, bool) {
		raw, ok := options[key]
		if !ok {
			return false, false
		}
		var v bool
		if err := json.Unmarshal(raw, &v); err != nil {
			warnings = append(warnings, "docling_options."+key+" is not a boolean, ignoring")
			return false, false
		}
		return v, true
	}
	getString := func(key string) (string, bool) {
		raw, ok := options[key]
		if !ok {
			return "", false
		}
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			warnings = append(warnings, "docling_options."+key+" is not a string, ignoring")
			return "", false
		}
		return v, true
	}
	getFloat := func(key string) (float64, bool) {
		raw, ok := options[key]
		if !ok {
			return 0, false
		}
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			var s string
			if json.Unmarshal(raw, &s) != nil {
				warnings = append(warnings, "docling_options."+key+" is not a number, ignoring")
				return 0, false
			}
			parsed, perr := strconv.ParseFloat(s, 64)
			if perr != nil {
				warnings = append(warnings, "docling_options."+key+" is not a number, ignoring")
				return 0, false
			}
			v = parsed
		}
		return v, true
	}
	getInt := func(key string) (int, bool) {
		f, ok := getFloat(key)
		return int(f), ok
	}

	if v, ok := getBool("create_legacy_output"); ok {
		cfg.CreateLegacyOutput = v
	}
	if v, ok := getFloat("document_timeout"); ok {
		cfg.DocumentTimeout = durationFromSeconds(v)
	}
	if v, ok := getBool("enable_remote_services"); ok {
		cfg.EnableRemoteServices = v
	}
	if v, ok := getBool("allow_external_plugins"); ok {
		cfg.AllowExternalPlugins = v
	}
	if v, ok := getString("artifacts_path"); ok {
		cfg.ArtifactsPath = v
	}
	if v, ok := getBool("force_backend_text"); ok {
		cfg.ForceBackendText = v
	}
	if v, ok := getBool("generate_parsed_pages"); ok {
		cfg.GenerateParsedPages = v
	}
	if v, ok := getBool("generate_page_images"); ok {
		cfg.GeneratePageImages = v
	}
	if v, ok := getBool("generate_table_images"); ok {
		cfg.GenerateTableImages = v
	}
	if v, ok := getBool("generate_picture_images"); ok {
		cfg.GeneratePictureImages = v
	}

	if v, ok := getBool("do_picture_description"); ok && v {
		cfg.DoPictureDescription = true
		if scale, ok := getFloat("images_scale"); ok {
			cfg.ImagesScale = scale
		} else {
			cfg.ImagesScale = 2.0
		}
		if prompt, ok := getString("custom_prompt"); ok {
			cfg.CustomPrompt = prompt
		} else if prompt, ok := getString("vlm_prompt"); ok {
			cfg.VLMPrompt = prompt
		}
		model, ok := getString("vlm_model")
		if !ok {
			model = "granite"
		}
		canonical, warning := canonicalizeVLMModel(model)
		if warning != "" {
			warnings = append(warnings, warning)
		}
		cfg.VLMModel = canonical
		if v, ok := getInt("vlm_batch_size"); ok {
			cfg.VLMBatchSize = v
		}
		if v, ok := getFloat("vlm_picture_area_threshold"); ok {
			cfg.VLMPictureAreaThreshold = v
		}
	}

	if v, ok := getBool("do_picture_classification"); ok {
		cfg.DoPictureClassification = v
	}
	if v, ok := getBool("do_code_enrichment"); ok {
		cfg.DoCodeEnrichment = v
	}
	if v, ok := getBool("do_formula_enrichment"); ok {
		cfg.DoFormulaEnrichment = v
	}
	if v, ok := getBool("do_table_structure"); ok {
		cfg.DoTableStructure = v
	}
	if v, ok := getBool("do_ocr"); ok {
		cfg.DoOCR = v
	}

	if v, ok := getBool("force_full_page_ocr"); ok {
		cfg.ForceFullPageOCR = v
	}
	if v, ok := getFloat("ocr_bitmap_area_threshold"); ok {
		cfg.OCRBitmapAreaThreshold = v
	}
	if v, ok := getBool("ocr_use_gpu"); ok {
		cfg.OCRUseGPU = v
	}
	if v, ok := getFloat("ocr_confidence_threshold"); ok {
		cfg.OCRConfidenceThreshold = v
	}
	if v, ok := getString("ocr_model_storage_directory"); ok {
		cfg.OCRModelStorageDirectory = v
	}
	if v, ok := getString("ocr_recog_network"); ok {
		cfg.OCRRecogNetwork = v
	}
	if v, ok := getBool("ocr_download_enabled"); ok {
		cfg.OCRDownloadEnabled = v
	}
	if raw, ok := options["ocr_languages"]; ok {
		var langs []string
		if err := json.Unmarshal(raw, &langs); err == nil {
			cfg.OCRLanguages = langs
		} else {
			warnings = append(warnings, "docling_options.ocr_languages is not a string array, ignoring")
		}
	}

	if v, ok := getBool("table_do_cell_matching"); ok {
		cfg.TableDoCellMatching = v
	}
	if v, ok := getString("table_mode"); ok {
		cfg.TableMode = v
	}

	if v, ok := getString("accelerator_device"); ok {
		cfg.AcceleratorDevice = v
	}
	if v, ok := getInt("num_threads"); ok {
		cfg.NumThreads = v
	}
	if v, ok := getBool("cuda_use_flash_attention2"); ok {
		cfg.CUDAUseFlashAttention2 = v
	}

	if raw, ok := options["input_formats"]; ok {
		formats, err := decodeStringOrSlice(raw)
		if err != nil {
			warnings = append(warnings, "docling_options.input_formats is malformed, using default")
		} else {
			cfg.InputFormats = formats
		}
	}

	if v, ok := getBool("do_asr"); ok && v {
		cfg.DoASR = true
		model := "whisper_tiny"
		if m, ok := getString("asr_model"); ok {
			if canonical, known := asrModelAliases[lowercase(m)]; known {
				model = canonical
			} else {
				warnings = append(warnings, "docling_options.asr_model is unrecognized, defaulting to whisper_tiny")
			}
		}
		cfg.ASRModel = model

		if lang, ok := getString("asr_language"); ok && lang != "auto" {
			cfg.ASRLanguage = lang
		}
	}

	if v, ok := getBool("raises_on_error"); ok {
		cfg.ConverterOptions.RaisesOnError = v
	}
	if v, ok := getBool("debug_mode"); ok {
		cfg.ConverterOptions.DebugMode = v
	}
	if v, ok := getInt("max_file_size"); ok {
		cfg.ConverterOptions.MaxFileSize = int64(v)
	}
	if v, ok := getFloat("timeout"); ok {
		// timeout has no field of its own: it sets DocumentTimeout only
		// when document_timeout was not given.
		if cfg.DocumentTimeout == 0 {
			cfg.DocumentTimeout = durationFromSeconds(v)
		}
	}

	return cfg, warnings, nil
}

func decodeStringOrSlice(raw json.RawMessage) ([]string, error) {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var single string
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	return []string{single}, nil
}

func lowercase(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
