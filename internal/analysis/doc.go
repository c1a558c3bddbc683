// Package analysis provides pure text-analysis functions: section and
// keyword extraction, sentence splitting, document type detection,
// question intent classification, and quiz concept extraction.
//
// Every function here is side-effect free and returns structured values,
// so each pattern category can be unit-tested in isolation from the
// retrieval pipeline.
package analysis
