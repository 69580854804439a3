package resources

// DataID identifies a bundled binary resource.
type DataID uint32

const (
	DataCreditsHTML DataID = 1 + iota
	DataCreditsJS
	DataKeyboardUtilsJS
	DataOSCreditsHTML
)

// StringID identifies a localized string resource.
type StringID uint32

const (
	StringTermsHTML StringID = 1 + iota
	StringContainerCreditsPlaceholder
	StringProxyConfigTitle
	StringProxyConfigBody
	StringProductName
	StringURLsTitle
)
