// Package platform selects and initializes the OS integration layer.
//
// Platform split:
//   - android: generic, google, amazon and cardboard storefronts
//   - macos, ios_tvos: apple
//   - windows: generic and oculus
//   - linux: linux, with file-based identity sources
//   - other: generic
//
// New is the only way to obtain a Platform. It constructs the variant and
// runs the shared init before the variant's own, so a handle it returns has
// always been fully initialized.
package platform
