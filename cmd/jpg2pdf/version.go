package main

// versionTemplate renders --version output, e.g. "jpg2pdf dev".
const versionTemplate = "jpg2pdf {{.Version}}\n"
