// Package templates assembles the named template set handed to the engine.
//
// Templates found under a root directory are registered under their
// slash-separated path relative to that root, so `{% extends "base.txt" %}`
// and `{% include "partials/nav.html" %}` resolve by name. The entry
// template is registered separately under EntryPrefix so it never displaces
// a collected template with the same relative path.
package templates
