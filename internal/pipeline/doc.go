// Package pipeline implements the four-stage batch pass over the campaign
// dataset.
//
// # Stages
//
// 1. Loader: reads a delimited file or Excel workbook into a dataset.Table.
//
// 2. Cleaner: drops unneeded columns, normalizes and renames column names
// into the Spanish canonical vocabulary, casts date and categorical
// columns, drops rows missing a key categorical value, and median-fills
// remaining numeric nulls.
//
// 3. Transformer: derives dias_desde_registro (day count between the
// registration and contact dates) and categoria_duracion (Corta/Media/Larga
// call-duration bucket).
//
// 4. Runner: composes the stages, persists the processed table back to its
// source path, then hands the table to the Visualizer.
//
// # Data Flow
//
//	CSV/XLSX → Loader → Table → Cleaner → Transformer → persist → Visualizer
//
// # Error Handling
//
// The one recovered failure is a missing dataset file: the Runner logs it
// and halts the remaining stages without reporting an error. Malformed
// dates and numbers degrade to nulls during cleaning. Everything else
// (permissions, malformed delimiter structure, a missing column a later
// stage depends on) propagates to the caller.
package pipeline
