package addressbook

import (
	"regexp"
	"strings"
)

const (
	// KeyBookID is the Metadata key holding the addressbook owner identifier.
	KeyBookID = "bookId"
	// KeyBookName is the Metadata key holding the addressbook name.
	KeyBookName = "bookName"
)

// DefaultPrefix is the path prefix of the ESN Sabre DAV endpoint.
const DefaultPrefix = "/esn-sabre/esn.php"

var addressbookPathPattern = regexp.MustCompile(`addressbooks/([^/]+)/([^/]+?)\.json`)

// Metadata identifies one addressbook extracted from a DAV path.
//
// An empty Metadata means the path did not point at an addressbook. It is not
// an error: callers branch on Empty.
type Metadata map[string]string

// BookID returns the addressbook owner identifier, or "" when absent.
func (m Metadata) BookID() string {
	return m[KeyBookID]
}

// BookName returns the addressbook name, or "" when absent.
func (m Metadata) BookName() string {
	return m[KeyBookName]
}

// Empty reports whether no addressbook was matched.
func (m Metadata) Empty() bool {
	return len(m) == 0
}

// ParsePath extracts addressbook metadata from a path such as
// /esn-sabre/esn.php/addressbooks/{bookId}/{bookName}.json.
//
// Anything before addressbooks/ and after .json is ignored. Paths without a
// well-formed addressbooks/<id>/<name>.json segment yield an empty Metadata.
func ParsePath(path string) Metadata {
	matches := addressbookPathPattern.FindStringSubmatch(path)
	if len(matches) != 3 {
		return Metadata{}
	}
	return Metadata{
		KeyBookID:   matches[1],
		KeyBookName: matches[2],
	}
}

// Path builds the canonical addressbook path under prefix.
func Path(prefix string, bookID string, bookName string) string {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	return prefix + "/addressbooks/" + bookID + "/" + bookName + ".json"
}
