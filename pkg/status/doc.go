/*
Package status holds the outcome model of a batch run and turns it into text.

	            +-------------+
	            |   Status    |
	            |  (Outcomes) |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|  Result   |           |  Text   |
	|  (Model)  |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Defines FileOutcome, BatchResult and their status enums
- Defines the Event records handed to logging sinks
- Formats outcomes for logs, consoles and people

🔄 Flow:
1. The operation package creates one FileOutcome per matched file
2. Outcomes are collected, in scan order, into a BatchResult
3. Formatters and the UserLogger render the result once the run is over

🤝 Interfaces:
- FileFormatter: text for outcomes, batch lines, progress and errors
- UserLogger: pterm rendering mirrored to zerolog

🔍 Example:

	ul := status.NewUserLogger(ctx, os.Stdout)
	ul.LogResult(result)

	fmt.Println(status.FormatFileOperation(result.Outcomes[0]))
*/
package status
