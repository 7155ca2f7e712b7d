// Command reelsort scans directories of media files, identifies each file
// from its name and online metadata, and organizes the files into a clean
// library tree.
package main
