package display

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	textAvatarPathPrefix = "/contact/api/contacts/"
	textAvatarPathSuffix = "/avatar"
)

// ESNTextAvatars classifies photos served by the contact avatar generator,
// i.e. /contact/api/contacts/<bookId>/<bookName>/<cardId>/avatar.
var ESNTextAvatars TextAvatarClassifier = TextAvatarFunc(isESNTextAvatar)

func isESNTextAvatar(record Record) bool {
	photo := strings.TrimSpace(record.Photo)
	if photo == "" {
		return false
	}
	u, err := url.Parse(photo)
	if err != nil {
		return false
	}
	return strings.Contains(u.Path, textAvatarPathPrefix) && strings.HasSuffix(u.Path, textAvatarPathSuffix)
}

// UpdateURLParameter sets key=value in the query of rawURL, replacing the
// first existing occurrence in place and appending otherwise.
//
// Unparseable URLs and empty keys are returned unchanged.
func UpdateURLParameter(rawURL string, key string, value any) string {
	if key == "" {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	pair := url.QueryEscape(key) + "=" + url.QueryEscape(fmt.Sprint(value))
	var params []string
	if u.RawQuery != "" {
		params = strings.Split(u.RawQuery, "&")
	}

	replaced := false
	kept := make([]string, 0, len(params)+1)
	for _, param := range params {
		name, _, _ := strings.Cut(param, "=")
		if decoded, err := url.QueryUnescape(name); err == nil {
			name = decoded
		}
		if name != key {
			kept = append(kept, param)
			continue
		}
		if !replaced {
			kept = append(kept, pair)
			replaced = true
		}
	}
	if !replaced {
		kept = append(kept, pair)
	}

	u.RawQuery = strings.Join(kept, "&")
	u.ForceQuery = false
	return u.String()
}
