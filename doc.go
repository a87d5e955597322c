// Package esncontact is a lightweight index for the contact presentation
// subpackages in this module.
//
// This root package is documentation-only. Import specific subpackages to use
// concrete helpers.
//
// Available subpackages:
//   - github.com/spachava753/esncontact/addressbook
//     Parse and build ESN addressbook paths (<prefix>/addressbooks/<bookId>/<bookName>.json).
//   - github.com/spachava753/esncontact/display
//     Display shells: avatar, display name, preferred email/phone and menu metadata
//     derived from a contact record.
//   - github.com/spachava753/esncontact/store
//     Local SQLite cache of contact records keyed by addressbook.
//
// The esncontact command (cmd/esncontact) wires them together:
//
//	esncontact parse /esn-sabre/esn.php/addressbooks/2222/3333.json
//	esncontact import /esn-sabre/esn.php/addressbooks/2222/contacts.json contacts.yaml
//	esncontact show --size 256 /esn-sabre/esn.php/addressbooks/2222/contacts.json
//
// Discovery workflow:
//   - Run: go doc github.com/spachava753/esncontact
//   - Then drill in with:
//     go doc github.com/spachava753/esncontact/addressbook
//     go doc github.com/spachava753/esncontact/display
//     go doc github.com/spachava753/esncontact/store
package esncontact
