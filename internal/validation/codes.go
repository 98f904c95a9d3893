package validation

// Failure codes. These are a stable, machine-readable contract.
const (
	CodeInputNotNull          = "VE_TextAnalysisInput_NotNull_001"
	CodeTextNotNull           = "VE_TextAnalysisInput_Text_NotNull_001"
	CodeTextNotEmpty          = "VE_TextAnalysisInput_Text_NotEmpty_001"
	CodeSubtextNotNull        = "VE_TextAnalysisInput_Subtext_NotNull_001"
	CodeSubtextNotEmpty       = "VE_TextAnalysisInput_Subtext_NotEmpty_001"
	CodeSubtextLongerThanText = "VE_TextAnalysisInput_SubtextLengthLargerThanTextLength_NotValid_001"
)

const (
	MessageInputNotNull          = "TextAnalysisInput should NOT be NULL"
	MessageTextNotNull           = "Text should NOT be NULL"
	MessageTextNotEmpty          = "Text should NOT be Empty"
	MessageSubtextNotNull        = "Subtext should NOT be NULL"
	MessageSubtextNotEmpty       = "Subtext should NOT be Empty"
	MessageSubtextLongerThanText = "Subtext Length is larger than Text Length"
)
