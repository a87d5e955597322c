// Package addressbook parses ESN addressbook resource paths.
//
// The DAV layer addresses an addressbook as
//
//	<prefix>/addressbooks/<bookId>/<bookName>.json
//
// ParsePath turns such a path into Metadata and Path builds one back:
//
//	meta := addressbook.ParsePath("/esn-sabre/esn.php/addressbooks/2222/3333.json")
//	if meta.Empty() {
//		// not an addressbook path
//	}
//	_ = meta.BookID()   // "2222"
//	_ = meta.BookName() // "3333"
package addressbook
