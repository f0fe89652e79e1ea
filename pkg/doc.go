// Package pkg holds the libraries behind bomgen, which turns a local Maven
// repository into a Bill of Materials.
//
// # Data flow
//
//	m2 root (explicit path or $JAVA_HOME/../m2)
//	         ↓
//	    [m2] package (locate root, scan *.pom, derive coordinates from paths)
//	         ↓
//	    [pom] package (entity normalization, read packaging)
//	         ↓
//	    [bom] package (one version per groupId:artifactId, emit pom.xml)
//
// [pipeline] wires the stages together; [config] supplies BOM coordinates,
// skipped packaging types and the entity table; [errors] gives every failure
// a code; [observability] exposes stage hooks.
//
// # Quick Start
//
//	runner := pipeline.NewRunner(config.Default(), nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ProjectName: "myproj",
//	    Root:        "/home/me/.m2/repository",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Path)
package pkg
