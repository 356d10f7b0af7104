// Package services holds HouseSell's application core.
//
// SessionManager owns user identity: registration, credential checks and
// the single current session. ListingStore owns property records and gates
// every mutation on the requester's identity. Both persist through a
// kv.Store, rewriting whole collections on every change, and serialize their
// own operations with a mutex.
//
// Errors returned by either service wrap the sentinels in internal/common
// and should be matched with errors.Is.
package services
