package display

const (
	// DefaultAvatarPath is the bundled placeholder image for contacts.
	DefaultAvatarPath = "/contact/images/default_avatar.png"
	// DefaultMenu selects the default contact context-menu template.
	DefaultMenu = "default-menu-items"

	// OverlayHidden is the visibility class of a hidden overlay icon.
	OverlayHidden = "ng-hide"
	// OverlayShown is the visibility class of a visible overlay icon.
	OverlayShown = "ng-show"

	// AvatarSizeParameter is the query parameter carrying text avatar size.
	AvatarSizeParameter = "size"

	workType = "work"
)

// ObjectType classifies one displayed piece of contact information.
type ObjectType string

const (
	// ObjectTypeEmail marks an email entry.
	ObjectTypeEmail ObjectType = "email"
	// ObjectTypePhone marks a telephone entry.
	ObjectTypePhone ObjectType = "phone"
)

const (
	// IconEmail is the icon token shown next to an email entry.
	IconEmail = "mdi-email-outline"
	// IconPhone is the icon token shown next to a phone entry.
	IconPhone = "mdi-phone"
)

// LabeledValue is a typed email or phone value, e.g. {Type: "work"}.
type LabeledValue struct {
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

// Record is the raw contact data a Shell renders.
//
// Nil Emails/Tel and an empty Photo mean the field is absent. A nil Writable
// means the record carries no edit restriction.
type Record struct {
	DisplayName string         `json:"displayName" yaml:"displayName"`
	Emails      []LabeledValue `json:"emails,omitempty" yaml:"emails,omitempty"`
	Tel         []LabeledValue `json:"tel,omitempty" yaml:"tel,omitempty"`
	Photo       string         `json:"photo,omitempty" yaml:"photo,omitempty"`
	Writable    *bool          `json:"writable,omitempty" yaml:"writable,omitempty"`
}

// Info is one entry of Shell.InformationsToDisplay.
type Info struct {
	ObjectType ObjectType
	ID         string
	Icon       string
	Action     string
}

// TextAvatarClassifier reports whether a record photo is a generated text avatar.
type TextAvatarClassifier interface {
	IsTextAvatar(record Record) bool
}

// TextAvatarFunc adapts a function to TextAvatarClassifier.
type TextAvatarFunc func(record Record) bool

// IsTextAvatar calls f(record).
func (f TextAvatarFunc) IsTextAvatar(record Record) bool {
	return f(record)
}

// URLUpdater rewrites one query parameter of a URL.
type URLUpdater interface {
	UpdateURLParameter(rawURL string, key string, value any) string
}

// URLUpdaterFunc adapts a function to URLUpdater.
type URLUpdaterFunc func(rawURL string, key string, value any) string

// UpdateURLParameter calls f(rawURL, key, value).
func (f URLUpdaterFunc) UpdateURLParameter(rawURL string, key string, value any) string {
	return f(rawURL, key, value)
}
