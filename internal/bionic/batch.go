package bionic

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const (
	defaultConcurrencyLimitConstant = 4
)

// TransformAll transforms every document concurrently with at most concurrencyLimit workers.
// Results are returned in input order. A non-positive limit selects the default.
func TransformAll(executionContext context.Context, documents []string, enabled bool, concurrencyLimit int) ([]Output, error) {
	if concurrencyLimit <= 0 {
		concurrencyLimit = defaultConcurrencyLimitConstant
	}

	outputs := make([]Output, len(documents))
	group, groupContext := errgroup.WithContext(executionContext)
	group.SetLimit(concurrencyLimit)

	for documentIndex, document := range documents {
		if groupContext.Err() != nil {
			break
		}
		group.Go(func() error {
			if contextError := groupContext.Err(); contextError != nil {
				return contextError
			}
			outputs[documentIndex] = Transform(document, enabled)
			return nil
		})
	}

	if waitError := group.Wait(); waitError != nil {
		return nil, waitError
	}
	if contextError := executionContext.Err(); contextError != nil {
		return nil, contextError
	}
	return outputs, nil
}
