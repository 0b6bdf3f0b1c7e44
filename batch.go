package lingua

import (
	"context"
	"sync"
)

// defaultParallelThreshold is the batch size at which TranslateBatch fans
// out to goroutines instead of translating sequentially.
const defaultParallelThreshold = 4

// TranslateBatch translates independent texts for the same language pair and
// context, concurrently for larger batches. Results are positionally aligned
// with texts. There is no ordering guarantee across entries; each is an
// independent translate call with its own cache slot.
//
// The first delegate failure is returned; entries that completed before it
// may already sit in the cache, which is fine (successful translations are
// always cacheable).
func (t *CachingTranslator) TranslateBatch(ctx context.Context, texts []string, sourceLang, targetLang string, tc TextContext) ([]string, error) {
	results := make([]string, len(texts))
	if len(texts) == 0 {
		return results, nil
	}

	if len(texts) < defaultParallelThreshold {
		for i, text := range texts {
			out, err := t.Translate(ctx, text, sourceLang, targetLang, tc)
			if err != nil {
				return nil, err
			}
			results[i] = out
		}
		return results, nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for i, text := range texts {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			out, err := t.Translate(ctx, text, sourceLang, targetLang, tc)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			results[i] = out
		}(i, text)
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
