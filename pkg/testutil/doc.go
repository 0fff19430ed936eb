// Package testutil provides helpers shared by temple's package tests.
//
// Key components:
//   - Real-filesystem helpers (TempDir, CreateFile, CreateSymlink) for tests
//     that need symlinks or permission bits
//   - MemoryFS: an afero memory filesystem seeded from a path->content map
//   - Environment isolation: IsolateXDG points every XDG base directory at a
//     temp dir so config discovery and log files never touch the real home
//
// Usage guidelines:
//   - Prefer MemoryFS for template and context fixtures
//   - All test data should be defined inline, not in external files
package testutil
