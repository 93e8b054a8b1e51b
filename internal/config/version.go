package config

import "fmt"

var VersionInfo = &Version{
	GitCommit: "undefined",
	GitRef:    "no-ref",
	Version:   "local",
}

type Version struct {
	GitCommit, GitRef, Version string
}

func (v *Version) String() string {
	return fmt.Sprintf("GitCommit=%q GitRef=%q Version=%q", v.GitCommit, v.GitRef, v.Version)
}
