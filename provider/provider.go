// Package provider contains backing translation engines satisfying the
// lingua.Translator contract: a remote OpenAI-backed engine and a scriptable
// mock for tests.
package provider

import "github.com/ZaguanLabs/lingua"

// Translator is the backing-engine contract. Alias to the main package
// interface for convenience.
type Translator = lingua.Translator
