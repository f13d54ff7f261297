// Package apierr classifies failed marketplace API responses into typed,
// structured errors a caller can branch on, and provides the retry
// infrastructure built on top of that classification.
//
// # Classification
//
// Classify maps a non-success status plus its optional body to a
// ClassifiedError:
//
//	err := apierr.Classify(resp.StatusCode, body, resp.Header.Get("Content-Type"))
//	if err.Category == apierr.CategoryRateLimited {
//	    // back off
//	}
//
// The status-to-category mapping is fixed:
//
//	401, 403        -> CategoryAuthentication
//	404             -> CategoryNotFound
//	429             -> CategoryRateLimited
//	other 400..499  -> CategoryClientRequest
//	500..599        -> CategoryServer
//	anything else   -> CategoryUnknown
//
// Classification always succeeds: malformed or unstructured bodies degrade
// to a result carrying only status and category, never a panic or error.
//
// # Retrying
//
// Classification is a pure mapping and never retries. Callers that want
// retry semantics use RetryWithBackoff with the ShouldRetry predicate:
//
//	resp, err := apierr.RetryWithBackoff(ctx, apierr.RetryConfig{
//	    MaxRetries: 3,
//	    BaseDelay:  time.Second,
//	    MaxDelay:   30 * time.Second,
//	}, call, apierr.ShouldRetry)
//
// # Download Endpoints
//
// Export/download endpoints answer 412 while the requested artifact is
// still being generated. That is a soft miss, not a hard failure, but the
// decision belongs to the caller. IsNotYetAvailable(err) is that branch:
//
//	if apierr.IsNotYetAvailable(err) {
//	    // poll again later
//	}
package apierr
