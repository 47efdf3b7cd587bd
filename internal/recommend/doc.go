// Package recommend provides an HTTP client for the movie recommendation API.
//
// # Overview
//
// The backend exposes three routes that cinematch uses:
//
//   - GET /movies: JSON array of movie titles, in display order
//   - POST /recommend: body {"movie": <title>, "num": <1..20>}, answers
//     {"selected_movie": <title>, "recommendations": [{"title", "genres"}]}
//   - GET /: plain-text liveness answer, used only by the health poller
//
// # Client Usage
//
//	client, err := recommend.NewClient("http://localhost:5000")
//	if err != nil {
//		return err
//	}
//	titles, err := client.FetchMovies(ctx)
//	...
//	req, err := recommend.NewRequest(selected, countField, recommend.NewCatalogue(titles))
//	if err != nil {
//		// *ValidationError; nothing was sent
//	}
//	resp, err := client.Recommend(ctx, req)
//
// # Request Handling
//
// All requests:
//   - Use the caller's context for cancellation
//   - Set Accept: application/json and User-Agent: cinematch/0.1
//   - Carry a fresh X-Request-ID, which is also written to the log
//   - Have no timeout unless WithTimeout is given; a slow backend is
//     awaited until the context ends
//
// # Error Handling
//
// Two error kinds exist:
//
//   - *ValidationError: bad operator input, returned by NewRequest before
//     any network call
//   - *BackendError: transport failure, non-2xx status, or a body that does
//     not decode. Op names the route ("movies", "recommend", "ping").
//
// Example messages:
//   - "movies: execute request: dial tcp 127.0.0.1:5000: connect: connection refused"
//   - "recommend: backend returned status 500"
//   - "recommend: decode response: ..."
//
// The client never retries. Callers decide what a failure means.
//
// # URL Construction
//
//   - "" → http://localhost:5000
//   - "127.0.0.1:5000" → http://127.0.0.1:5000
//   - "https://films.example/api/" → https://films.example/api (routes are
//     joined below the prefix)
//
// # Thread Safety
//
// Client is safe for concurrent use.
package recommend
