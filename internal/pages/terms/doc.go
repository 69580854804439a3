// Package terms serves lumen://terms: the bundled terms of service, the
// OEM EULA, and the per-locale store terms and privacy documents used
// during device setup.
//
// The store documents are looked up by trying locale candidates in order:
// the UI language combined with the device region, then the region's
// broad label (apac/emea/eu), then en-us. The first document that exists
// wins; if none exists the bundled terms page is served instead. The
// online versions of these documents are fetched by the setup screens
// themselves — this source reads only preinstalled files, since it runs
// in a privileged context that must never load from untrusted places.
package terms
