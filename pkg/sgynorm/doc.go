// Package sgynorm provides global-maximum normalization of SEG-Y trace-file
// corpora.
//
// The runner performs two strictly sequential passes over the files
// discovered under the input root: a scan pass that computes the single
// largest absolute sample value across every trace of every file, then a
// scale pass that divides every sample by that maximum and writes each file
// to the mirrored relative path under the output root. Relative amplitude
// relationships are preserved both within and across files.
//
// # Basic Usage
//
//	cfg := sgynorm.Config{
//	    InputDir:  "/surveys/raw",
//	    OutputDir: "/surveys/normalized",
//	}
//
//	runner, err := sgynorm.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := runner.Run(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("global maximum:", result.GlobalMax)
//
// # Configuration
//
// Create a [Config] with at minimum InputDir and OutputDir. All other fields
// have sensible defaults set via [Config.SetDefaults]. Policies for
// unreadable files ([Config.OnError]) and all-zero corpora ([Config.ZeroMax])
// default to aborting the run; both passes apply the chosen policy uniformly
// so a skipped file is excluded from the maximum and the output alike.
//
// # Dependency Injection
//
// For embedding, inject a custom logger:
//
//	runner, err := sgynorm.New(cfg, sgynorm.WithLogger(customLogger))
//
// The logger is a pkg/log.Logger; zerolog and no-op implementations ship with
// this module.
package sgynorm
