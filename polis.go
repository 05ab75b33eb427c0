// Package polis provides extraction and normalization of social/media post
// metadata from heterogeneous sources (short-video platforms, link-based
// content, discussion sites). Each extraction produces a dual-entity record
// pair: a content Post and its Original Poster.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., resty/, gjson/, trafilatura/).
package polis
