package terminfo

// BooleanField is an ordinal index into a terminfo file's boolean section.
// Values exist only as enumeration ordinals; the canonical terminfo(5)
// predefined list. An enum member is only meaningful as an index — there is
// no reflection-based name-to-index map used by the decoder itself (that
// would defeat the point of a flat array lookup); String() below exists only
// for diagnostics.
type BooleanField int

// Predefined boolean capabilities, in terminfo(5) order.
const (
	AutoLeftMargin BooleanField = iota
	AutoRightMargin
	NoEscCtlc
	CeolStandoutGlitch
	EatNewlineGlitch
	EraseOverstrike
	GenericType
	HardCopy
	HasMetaKey
	HasStatusLine
	InsertNullGlitch
	MemoryAbove
	MemoryBelow
	MoveInsertMode
	MoveStandoutMode
	OverStrike
	StatusLineEscOk
	DestTabsMagicSmso
	TildeGlitch
	TransparentUnderline
	XonXoff
	NeedsXonXoff
	PrtrSilent
	HardCursor
	NonRevRmcup
	NoPadChar
	NonDestScrollRegion
	CanChange
	BackColorErase
	HueLightnessSaturation
	ColAddrGlitch
	CrCancelsMicroMode
	HasPrintWheel
	RowAddrGlitch
	SemiAutoRightMargin
	CpiChangesRes
	LpiChangesRes
	LinefeedIsNewline
	AutoBackspace
	XtMouse
	XtKittyKeyboard
	AmbiguousWidthGlitch
	BackspaceDeletesCharacter
	booleanFieldCount
)

// PredefinedBooleansCount is the number of enumerated predefined boolean
// capabilities.
const PredefinedBooleansCount = int(booleanFieldCount)

var booleanFieldNames = [...]string{
	"AutoLeftMargin", "AutoRightMargin", "NoEscCtlc", "CeolStandoutGlitch",
	"EatNewlineGlitch", "EraseOverstrike", "GenericType", "HardCopy",
	"HasMetaKey", "HasStatusLine", "InsertNullGlitch", "MemoryAbove",
	"MemoryBelow", "MoveInsertMode", "MoveStandoutMode", "OverStrike",
	"StatusLineEscOk", "DestTabsMagicSmso", "TildeGlitch", "TransparentUnderline",
	"XonXoff", "NeedsXonXoff", "PrtrSilent", "HardCursor", "NonRevRmcup",
	"NoPadChar", "NonDestScrollRegion", "CanChange", "BackColorErase",
	"HueLightnessSaturation", "ColAddrGlitch", "CrCancelsMicroMode",
	"HasPrintWheel", "RowAddrGlitch", "SemiAutoRightMargin", "CpiChangesRes",
	"LpiChangesRes", "LinefeedIsNewline", "AutoBackspace", "XtMouse",
	"XtKittyKeyboard", "AmbiguousWidthGlitch", "BackspaceDeletesCharacter",
}

func (f BooleanField) String() string {
	if i := int(f); i >= 0 && i < len(booleanFieldNames) {
		return booleanFieldNames[i]
	}
	return "BooleanField(?)"
}

// NumericField is an ordinal index into a terminfo file's numeric section.
type NumericField int

// Predefined numeric capabilities, in terminfo(5) order.
const (
	Columns NumericField = iota
	InitTabs
	Lines
	LinesOfMemory
	MagicCookieGlitch
	PaddingBaudRate
	VirtualTerminal
	WidthStatusLine
	NumLabels
	LabelHeight
	LabelWidth
	MaxAttributes
	MaximumWindows
	MaxColors
	MaxPairs
	NoColorVideo
	BufferCapacity
	DotVertSpacing
	DotHorzSpacing
	MaxMicroAddress
	MaxMicroJump
	MicroColSize
	MicroLineSize
	NumberOfPins
	OutputResChar
	OutputResLine
	OutputResHorzInch
	OutputResVertInch
	PrintRate
	WideCharSize
	Buttons
	BitImageEntwining
	BitImageType
	MagicCookieGlitchUl
	CarriageReturnDelay
	NewLineDelay
	BackspaceDelay
	HorizontalTabDelay
	NumberOfFunctionKeys
	numericFieldCount
)

// PredefinedNumericsCount is the number of enumerated predefined numeric
// capabilities.
const PredefinedNumericsCount = int(numericFieldCount)

var numericFieldNames = [...]string{
	"Columns", "InitTabs", "Lines", "LinesOfMemory", "MagicCookieGlitch",
	"PaddingBaudRate", "VirtualTerminal", "WidthStatusLine", "NumLabels",
	"LabelHeight", "LabelWidth", "MaxAttributes", "MaximumWindows", "MaxColors",
	"MaxPairs", "NoColorVideo", "BufferCapacity", "DotVertSpacing",
	"DotHorzSpacing", "MaxMicroAddress", "MaxMicroJump", "MicroColSize",
	"MicroLineSize", "NumberOfPins", "OutputResChar", "OutputResLine",
	"OutputResHorzInch", "OutputResVertInch", "PrintRate", "WideCharSize",
	"Buttons", "BitImageEntwining", "BitImageType", "MagicCookieGlitchUl",
	"CarriageReturnDelay", "NewLineDelay", "BackspaceDelay", "HorizontalTabDelay",
	"NumberOfFunctionKeys",
}

func (f NumericField) String() string {
	if i := int(f); i >= 0 && i < len(numericFieldNames) {
		return numericFieldNames[i]
	}
	return "NumericField(?)"
}

// StringField is an ordinal index into a terminfo file's string section.
type StringField int

// Predefined string capabilities, in terminfo(5) order. This is not the
// full ~400-entry ncurses list; it covers every capability named by name
// anywhere in this module plus the rest of the commonly used
// movement/editing/attribute/mouse/function-key set. See DESIGN.md.
const (
	BackTab StringField = iota
	Bell
	CarriageReturn
	ChangeScrollRegion
	ClearAllTabs
	ClearScreen
	ClrEol
	ClrEos
	ColumnAddress
	CommandCharacter
	CursorAddress
	CursorDown
	CursorHome
	CursorInvisible
	CursorLeft
	CursorMemAddress
	CursorNormal
	CursorRight
	CursorToLl
	CursorUp
	CursorVisible
	DeleteCharacter
	DeleteLine
	DisStatusLine
	DownHalfLine
	EnterAltCharsetMode
	EnterBlinkMode
	EnterBoldMode
	EnterCaMode
	EnterDeleteMode
	EnterDimMode
	EnterInsertMode
	EnterSecureMode
	EnterProtectedMode
	EnterReverseMode
	EnterStandoutMode
	EnterUnderlineMode
	EraseChars
	ExitAltCharsetMode
	ExitAttributeMode
	ExitCaMode
	ExitDeleteMode
	ExitInsertMode
	ExitStandoutMode
	ExitUnderlineMode
	FlashScreen
	FormFeed
	FromStatusLine
	Init1string
	Init2string
	Init3string
	InitFile
	InsertCharacter
	InsertLine
	InsertPadding
	KeyBackspace
	KeyCatab
	KeyClear
	KeyCtab
	KeyDc
	KeyDl
	KeyDown
	KeyEic
	KeyEol
	KeyEos
	KeyF0
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyF25
	KeyF26
	KeyF27
	KeyF28
	KeyF29
	KeyF30
	KeyF31
	KeyF32
	KeyF33
	KeyF34
	KeyF35
	KeyF36
	KeyF37
	KeyF38
	KeyF39
	KeyF40
	KeyF41
	KeyF42
	KeyF43
	KeyF44
	KeyF45
	KeyF46
	KeyF47
	KeyF48
	KeyF49
	KeyF50
	KeyF51
	KeyF52
	KeyF53
	KeyF54
	KeyF55
	KeyF56
	KeyF57
	KeyF58
	KeyF59
	KeyF60
	KeyF61
	KeyF62
	KeyF63
	KeyHome
	KeyIc
	KeyIl
	KeyLeft
	KeyLl
	KeyNpage
	KeyPpage
	KeyRight
	KeySf
	KeySr
	KeyStab
	KeyUp
	KeypadLocal
	KeypadXmit
	LabF0
	LabF1
	LabelOff
	LabelOn
	MetaOff
	MetaOn
	Newline
	PadChar
	ParmDch
	ParmDeleteLine
	ParmDownCursor
	ParmIch
	ParmIndex
	ParmInsertLine
	ParmLeftCursor
	ParmRightCursor
	ParmRindex
	ParmUpCursor
	Pkey_key
	PrintScreen
	PrtrOff
	PrtrOn
	RepeatChar
	Reset1string
	Reset2string
	Reset3string
	ResetFile
	RestoreCursor
	SaveCursor
	ScrollForward
	ScrollReverse
	SetAttributes
	SetAForeground
	SetABackground
	SetBackground
	SetForeground
	SetTabs
	SetWindow
	Tab
	ToStatusLine
	UnderlineChar
	UpHalfLine
	InitProg
	KeyA1
	KeyA3
	KeyB2
	KeyC1
	KeyC3
	PrtrNon
	CharPadding
	AcsChars
	PlabNorm
	KeyBtab
	EnterXonMode
	ExitXonMode
	EnterAmMode
	ExitAmMode
	XonCharacter
	XoffCharacter
	EnaAcs
	LabelFormat
	SetColorPair
	OrigPair
	OrigColors
	InitializeColor
	InitializePair
	SetColor
	KeyMouse
	MouseInfo
	ReqMousePos
	GetMouse
	ClearMargins
	SetLrMargin
	SetRmargin
	SetLmargin
	LabelFormat2
	UserDefinedStrings
	stringFieldCount
)

// PredefinedStringsCount is the number of enumerated predefined string
// capabilities.
const PredefinedStringsCount = int(stringFieldCount)

var stringFieldNames = [...]string{
	"BackTab", "Bell", "CarriageReturn", "ChangeScrollRegion", "ClearAllTabs",
	"ClearScreen", "ClrEol", "ClrEos", "ColumnAddress", "CommandCharacter",
	"CursorAddress", "CursorDown", "CursorHome", "CursorInvisible", "CursorLeft",
	"CursorMemAddress", "CursorNormal", "CursorRight", "CursorToLl", "CursorUp",
	"CursorVisible", "DeleteCharacter", "DeleteLine", "DisStatusLine",
	"DownHalfLine", "EnterAltCharsetMode", "EnterBlinkMode", "EnterBoldMode",
	"EnterCaMode", "EnterDeleteMode", "EnterDimMode", "EnterInsertMode",
	"EnterSecureMode", "EnterProtectedMode", "EnterReverseMode",
	"EnterStandoutMode", "EnterUnderlineMode", "EraseChars", "ExitAltCharsetMode",
	"ExitAttributeMode", "ExitCaMode", "ExitDeleteMode", "ExitInsertMode",
	"ExitStandoutMode", "ExitUnderlineMode", "FlashScreen", "FormFeed",
	"FromStatusLine", "Init1string", "Init2string", "Init3string", "InitFile",
	"InsertCharacter", "InsertLine", "InsertPadding", "KeyBackspace", "KeyCatab",
	"KeyClear", "KeyCtab", "KeyDc", "KeyDl", "KeyDown", "KeyEic", "KeyEol",
	"KeyEos", "KeyF0", "KeyF1", "KeyF2", "KeyF3", "KeyF4", "KeyF5", "KeyF6",
	"KeyF7", "KeyF8", "KeyF9", "KeyF10", "KeyF11", "KeyF12", "KeyF13", "KeyF14",
	"KeyF15", "KeyF16", "KeyF17", "KeyF18", "KeyF19", "KeyF20", "KeyF21",
	"KeyF22", "KeyF23", "KeyF24", "KeyF25", "KeyF26", "KeyF27", "KeyF28",
	"KeyF29", "KeyF30", "KeyF31", "KeyF32", "KeyF33", "KeyF34", "KeyF35",
	"KeyF36", "KeyF37", "KeyF38", "KeyF39", "KeyF40", "KeyF41", "KeyF42",
	"KeyF43", "KeyF44", "KeyF45", "KeyF46", "KeyF47", "KeyF48", "KeyF49",
	"KeyF50", "KeyF51", "KeyF52", "KeyF53", "KeyF54", "KeyF55", "KeyF56",
	"KeyF57", "KeyF58", "KeyF59", "KeyF60", "KeyF61", "KeyF62", "KeyF63",
	"KeyHome", "KeyIc", "KeyIl", "KeyLeft", "KeyLl", "KeyNpage", "KeyPpage",
	"KeyRight", "KeySf", "KeySr", "KeyStab", "KeyUp", "KeypadLocal",
	"KeypadXmit", "LabF0", "LabF1", "LabelOff", "LabelOn", "MetaOff", "MetaOn",
	"Newline", "PadChar", "ParmDch", "ParmDeleteLine", "ParmDownCursor",
	"ParmIch", "ParmIndex", "ParmInsertLine", "ParmLeftCursor",
	"ParmRightCursor", "ParmRindex", "ParmUpCursor", "Pkey_key", "PrintScreen",
	"PrtrOff", "PrtrOn", "RepeatChar", "Reset1string", "Reset2string",
	"Reset3string", "ResetFile", "RestoreCursor", "SaveCursor", "ScrollForward",
	"ScrollReverse", "SetAttributes", "SetAForeground", "SetABackground",
	"SetBackground", "SetForeground", "SetTabs", "SetWindow", "Tab",
	"ToStatusLine", "UnderlineChar", "UpHalfLine", "InitProg", "KeyA1", "KeyA3",
	"KeyB2", "KeyC1", "KeyC3", "PrtrNon", "CharPadding", "AcsChars", "PlabNorm",
	"KeyBtab", "EnterXonMode", "ExitXonMode", "EnterAmMode", "ExitAmMode",
	"XonCharacter", "XoffCharacter", "EnaAcs", "LabelFormat", "SetColorPair",
	"OrigPair", "OrigColors", "InitializeColor", "InitializePair", "SetColor",
	"KeyMouse", "MouseInfo", "ReqMousePos", "GetMouse", "ClearMargins",
	"SetLrMargin", "SetRmargin", "SetLmargin", "LabelFormat2",
	"UserDefinedStrings",
}

func (f StringField) String() string {
	if i := int(f); i >= 0 && i < len(stringFieldNames) {
		return stringFieldNames[i]
	}
	return "StringField(?)"
}
