// Package theoddsapi provides an h2h odds client for The Odds API (v4).
//
// # Endpoints
//
// ## Sports catalog
//
// GET /v4/sports/
//
// Lists every sport the provider covers, with its key, group and title.
// Soccer leagues live under the "Soccer" group; their keys (soccer_epl,
// soccer_spain_la_liga, ...) are what odds requests take.
//
// ## Odds
//
// GET /v4/sports/{sport_key}/odds/
//
// Parameterized by apiKey, regions, markets=h2h and oddsFormat=decimal.
// With deep links enabled the request also carries includeLinks=true and
// includeSids=true, and bookmaker/market/outcome objects come back with
// per-level link fields.
//
// Out-of-season sports answer 404 with no odds to offer; the client maps
// that to an empty event list instead of an error. The configured
// per-sport event cap truncates the raw list right after decoding, so a
// scan never processes more events than the cap allows.
//
// # Errors
//
// A rejected API key (401) surfaces as ErrUnauthorized and an exhausted
// request allowance (429) as ErrQuotaExceeded, both wrapped with the
// message the API body carries. Every other non-2xx status and transport
// failure is returned as a plain wrapped error. The client never retries.
//
// # Quota
//
// Every response reports the account allowance through the
// x-requests-remaining and x-requests-used headers. The client keeps the
// most recent pair, readable via LastQuota.
package theoddsapi
