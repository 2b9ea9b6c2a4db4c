package build

// Version of sectiongrid. Set at link time for releases.
var Version = "0.0.0"
