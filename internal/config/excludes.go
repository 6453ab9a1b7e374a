package config

// DefaultExcludeDomains returns a curated list of domains that should never
// appear in exported timelines. These include banking, password managers,
// healthcare portals, and authentication providers; the LLM digest is built
// to leave the machine, so these stay out of every output file.
func DefaultExcludeDomains() []string {
	return []string{
		// Banking & Financial
		"chase.com",
		"bankofamerica.com",
		"wellsfargo.com",
		"capitalone.com",
		"schwab.com",
		"fidelity.com",
		"vanguard.com",
		"paypal.com",
		"venmo.com",

		// Password Managers
		"1password.com",
		"lastpass.com",
		"bitwarden.com",
		"dashlane.com",

		// Authentication & Identity
		"accounts.google.com",
		"login.microsoftonline.com",
		"auth0.com",
		"okta.com",
		"login.gov",
		"id.me",

		// Healthcare & Government
		"mychart.com",
		"healthcare.gov",
		"irs.gov",
		"ssa.gov",
		"turbotax.intuit.com",

		// Crypto
		"coinbase.com",
		"kraken.com",
	}
}
