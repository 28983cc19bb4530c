// Package atlas indexes bitmaps that live inside one shared GPU texture.
//
// An external producer packs many small bitmaps into a single buffer and
// hands it to Atlas.Init together with a placement list. The atlas binds the
// buffer as one GPU image and records, per bitmap identity, an Entry holding
// a virtual texture descriptor and a UV mapper into the bitmap's
// sub-rectangle. Renderers look entries up by identity and use
// Entry.MergeID as a batching key: two atlas draws with equal merge ids can
// be merged into one draw call.
//
// An Atlas is bound to the thread owning the GPU context and performs no
// locking. Callers serialize access.
package atlas
