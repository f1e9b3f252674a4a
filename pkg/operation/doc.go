/*
Package operation runs one literal substitution over the files of a directory.

	+-------------+
	|  Operation  |
	| (Orchestr.) |
	+------+------+
	       |
	+------+------+------+
	|      |             |
	Scan   Rewrite    Record
	(scan) (text)     (EventSink)

🎯 Purpose:
- Validates a Request and resolves its optional directory
- Lists matching entries with the scan package
- Rewrites each entry in place with a text.TextReplacer
- Collects outcomes, in scan order, into a status.BatchResult

🔄 Flow:
1. No directory selected: BatchDirectoryNotSelected, nothing touched
2. Directory missing: BatchDirectoryNotSelected plus scan.ErrInvalidDirectory
3. Nothing matched: BatchNoFilesFound, nothing touched
4. Otherwise every entry is attempted and the batch is a BatchSuccess, even
   when some files end in status.StatusError

⚡ Concurrency:
Files are handled one at a time on the calling goroutine. There are no locks,
retries or timeouts. Writes are in place and not atomic: a crash between the
read and the write of a file can leave it partially written. The context is
checked between files so a caller can interrupt a long batch.

🤝 Interfaces:
- EventSink: receives every event of a run (ZerologSink, MultiSink, SinkFunc)
- text.TextReplacer: computes new content

🔍 Example:

	dir := "/data/results"
	engine := operation.New(operation.Options{})
	result, err := engine.Run(ctx, operation.Request{
		Directory: &dir,
		Extension: ".txt",
		Search:    "2-0",
		Replace:   "1-1",
		Scope:     text.ScopeAll,
	})
*/
package operation
