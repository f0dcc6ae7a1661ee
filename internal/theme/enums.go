package theme

import "git.home.luguber.info/inful/blogbuilder/internal/foundation/normalization"

// ThemeColor selects one of the theme's built-in palettes.
type ThemeColor string

const (
	ColorVPDefault ThemeColor = "vp-default"
	ColorVPGreen   ThemeColor = "vp-green"
	ColorVPYellow  ThemeColor = "vp-yellow"
	ColorVPRed     ThemeColor = "vp-red"
	ColorELBlue    ThemeColor = "el-blue"
	ColorELYellow  ThemeColor = "el-yellow"
	ColorELGreen   ThemeColor = "el-green"
	ColorELRed     ThemeColor = "el-red"
)

var themeColors = normalization.NewNormalizer("themeColor", map[string]ThemeColor{
	"vp-default": ColorVPDefault,
	"vp-green":   ColorVPGreen,
	"vp-yellow":  ColorVPYellow,
	"vp-red":     ColorVPRed,
	"el-blue":    ColorELBlue,
	"el-yellow":  ColorELYellow,
	"el-green":   ColorELGreen,
	"el-red":     ColorELRed,
}, ColorVPDefault)

// InputPosition places the comment input box.
type InputPosition string

const (
	InputTop    InputPosition = "top"
	InputBottom InputPosition = "bottom"
)

var inputPositions = normalization.NewNormalizer("comment.inputPosition", map[string]InputPosition{
	"top":    InputTop,
	"bottom": InputBottom,
}, InputTop)

// ItemType tags a popover item.
type ItemType string

const (
	ItemText   ItemType = "text"
	ItemImage  ItemType = "image"
	ItemButton ItemType = "button"
)

// Blank input resolves to "" so a missing type is caught by validation.
var itemTypes = normalization.NewNormalizer("popover item type", map[string]ItemType{
	"text":   ItemText,
	"image":  ItemImage,
	"button": ItemButton,
}, "")
