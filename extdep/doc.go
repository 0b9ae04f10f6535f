// Package extdep resolves the optional external tools and libraries a
// dataset may require, and reports the missing ones with install
// guidance instead of a bare failure.
//
// What:
//
//   - Which resolves a command name on PATH into an Executable;
//     Executable.Run invokes it and captures combined output.
//   - InstallName maps a library's import name to its installable
//     package name via a small lookup table with an identity
//     fallback; InstallHint renders the full guidance message.
//   - InDir runs a function with the process working directory
//     temporarily switched, for tools that only operate in-place.
//
// Why:
//
//   - Some datasets lean on external programs (azcopy, gdal
//     utilities) or optional libraries only at download or decode
//     time. Those stay optional: nothing fails until a dataset that
//     needs them is actually used, and then the error says exactly
//     what to install.
//
// Errors:
//
//   - ErrMissingDependency: the tool or library is not installed;
//     the wrapped message carries the install guidance.
package extdep
