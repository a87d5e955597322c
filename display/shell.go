package display

import "strings"

// Option configures a Shell.
type Option func(*Shell)

// WithTextAvatarClassifier replaces the text avatar classifier.
func WithTextAvatarClassifier(classifier TextAvatarClassifier) Option {
	return func(s *Shell) {
		if classifier != nil {
			s.classifier = classifier
		}
	}
}

// WithURLUpdater replaces the URL parameter rewriter used by Avatar.
func WithURLUpdater(updater URLUpdater) Option {
	return func(s *Shell) {
		if updater != nil {
			s.updater = updater
		}
	}
}

// WithDefaultAvatar sets the avatar returned for records without a photo.
func WithDefaultAvatar(avatarURL string) Option {
	return func(s *Shell) {
		if avatarURL != "" {
			s.defaultAvatar = avatarURL
		}
	}
}

// WithMenu sets the context-menu token returned by DropDownMenu.
func WithMenu(menu string) Option {
	return func(s *Shell) {
		if menu != "" {
			s.menu = menu
		}
	}
}

// WithWritable forces the writability of every wrapped record.
func WithWritable(writable bool) Option {
	return func(s *Shell) {
		s.writable = &writable
	}
}

// Shell is a read-only presentation view over one Record.
//
// Every accessor derives its value from the wrapped record on each call.
type Shell struct {
	record        Record
	classifier    TextAvatarClassifier
	updater       URLUpdater
	defaultAvatar string
	menu          string
	writable      *bool
}

// New wraps record for rendering.
func New(record Record, opts ...Option) *Shell {
	s := &Shell{
		record:        record,
		classifier:    ESNTextAvatars,
		updater:       URLUpdaterFunc(UpdateURLParameter),
		defaultAvatar: DefaultAvatarPath,
		menu:          DefaultMenu,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Record returns a copy of the wrapped record.
func (s *Shell) Record() Record {
	return s.record
}

// DefaultAvatar returns the bundled placeholder avatar path.
func (s *Shell) DefaultAvatar() string {
	return DefaultAvatarPath
}

// Avatar returns the avatar URL to render at size pixels.
//
// Text avatars are regenerated at the requested size. Uploaded photos are
// returned as-is and records without a photo get the configured default.
func (s *Shell) Avatar(size int) string {
	if strings.TrimSpace(s.record.Photo) == "" {
		return s.defaultAvatar
	}
	if s.classifier.IsTextAvatar(s.record) {
		return s.updater.UpdateURLParameter(s.record.Photo, AvatarSizeParameter, size)
	}
	return s.record.Photo
}

// DisplayName returns the record display name.
func (s *Shell) DisplayName() string {
	return s.record.DisplayName
}

// IsWritable reports whether the record may be edited.
func (s *Shell) IsWritable() bool {
	if s.writable != nil {
		return *s.writable
	}
	if s.record.Writable == nil {
		return true
	}
	return *s.record.Writable
}

// OverlayIcon returns the visibility class of the read-only overlay icon.
func (s *Shell) OverlayIcon() string {
	if s.IsWritable() {
		return OverlayHidden
	}
	return OverlayShown
}

// InformationsToDisplay returns at most one email followed by at most one phone.
//
// A "work" entry wins; otherwise the first entry of the list is used.
func (s *Shell) InformationsToDisplay() []Info {
	infos := make([]Info, 0, 2)
	if email, ok := preferred(s.record.Emails); ok {
		infos = append(infos, Info{
			ObjectType: ObjectTypeEmail,
			ID:         email.Value,
			Icon:       IconEmail,
			Action:     "mailto:" + email.Value,
		})
	}
	if tel, ok := preferred(s.record.Tel); ok {
		infos = append(infos, Info{
			ObjectType: ObjectTypePhone,
			ID:         tel.Value,
			Icon:       IconPhone,
			Action:     "tel:" + tel.Value,
		})
	}
	return infos
}

// DropDownMenu returns the context-menu template token.
func (s *Shell) DropDownMenu() string {
	return s.menu
}

func preferred(values []LabeledValue) (LabeledValue, bool) {
	if len(values) == 0 {
		return LabeledValue{}, false
	}
	for _, value := range values {
		if value.Type == workType {
			return value, true
		}
	}
	return values[0], true
}
