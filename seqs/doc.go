/*
Package seqs provides small building blocks for Go 1.23+ iterators (iter.Seq).

  - **Generation**: [Range] yields arithmetic progressions in either direction.
  - **Transformation**: [Map].
  - **Flow Control**: [Take].

The container package builds its identity and reverse permutations from [Range];
the multiorder command formats and limits traversal output with [Map] and [Take].
*/
package seqs
