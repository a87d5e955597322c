// Package store caches contact records locally, keyed by addressbook.
//
// Records are routed with addressbook.Metadata, usually obtained from
// addressbook.ParsePath on the DAV path the records were fetched from:
//
//	s, err := store.Open("contacts.db")
//	if err != nil {
//		// handle
//	}
//	defer s.Close()
//
//	meta := addressbook.ParsePath("/esn-sabre/esn.php/addressbooks/2222/contacts.json")
//	card, err := s.Put(ctx, meta, store.Card{Record: record})
//	cards, err := s.List(ctx, meta)
//
// Errors are *Error values classified by ErrorCode. Use IsCode to branch on
// them.
//
// SQLite access uses github.com/mattn/go-sqlite3 (CGO required).
package store
