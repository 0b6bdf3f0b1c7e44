// Package lingua provides a translation-caching and text-protection pipeline
// that sits between application code and a pluggable backing translator
// (on-device model, cloud API, or custom).
//
// Lingua protects embedded placeholders (format specifiers, named tokens,
// template expressions, markup tags) from being mangled by the translator,
// caches results by content hash and language pair, and exposes a
// readiness/preparation protocol for engines that need warm-up (for example
// an on-device model download).
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/ZaguanLabs/lingua"
//	    "github.com/ZaguanLabs/lingua/cache"
//	    "github.com/ZaguanLabs/lingua/provider"
//	)
//
//	func main() {
//	    // Create backing translator
//	    delegate := provider.NewOpenAITranslator(provider.OpenAIConfig{
//	        APIKey: os.Getenv("OPENAI_API_KEY"),
//	    })
//
//	    // Create caching decorator
//	    t := lingua.NewCachingTranslator(delegate,
//	        lingua.WithCache(cache.NewLRUCache(1024, 0)),
//	    )
//
//	    out, err := t.Translate(context.Background(),
//	        "Hello %1$s, you have {count} new messages",
//	        "en", "es", lingua.ContextUI)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(out) // Hola %1$s, tienes {count} mensajes nuevos
//	}
package lingua
