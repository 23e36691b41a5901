// Package consent implements the cookie banner. Essential cookies are always
// on; analytics and marketing are user choices persisted with a timestamp.
// A persisted record suppresses the banner on later loads, and the analytics
// toggle drives loading and unloading of the third-party analytics script.
package consent
