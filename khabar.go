// Package khabar extracts clean article text from configured news sites.
// Each site has a DomainConfig describing how to render and harvest its
// pages; a Registry maps hostnames to configurations; the extraction
// façade renders pages in a headless browser, harvests content blocks,
// and degrades to a generic boilerplate-stripping extractor when the
// configured path produces nothing.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., rod/,
// goquery/, trafilatura/, openai/).
package khabar
