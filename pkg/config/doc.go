/*
Package config loads named substitution jobs from YAML, JSON or HCL files.

	            +-------------+
	            |   Config    |
	            |   (Jobs)    |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   JSON   | |   HCL    |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Describe repeatable batch runs in a file
- Fill in the same defaults as the command line (.txt, 2-0, 1-1, all)
- Turn each job into an operation.Request

🔄 Flow:
1. Reads the file
2. Picks a parser by extension
3. Resolves relative directories against the file's directory
4. Validates every job

📝 Formats:

	# qffnr.yaml
	jobs:
	  - name: reports
	    directory: ./reports
	    scope: last
	    ignore: ["draft-*"]

	# qffnr.hcl
	job "reports" {
	  directory = "${env.HOME}/reports"
	  search    = "2-0"
	  replace   = "1-1"
	}

Omitted search and replace fall back to the defaults. An explicit empty
replace deletes the match; an explicit empty search is rejected.

🔍 Example:

	cfg, err := config.Load(ctx, "qffnr.yaml")
	if err != nil {
		return err
	}

	jobs, err := cfg.OperationJobs()
	if err != nil {
		return err
	}

	results, err := operation.NewRunner(engine).Run(ctx, jobs)
*/
package config
