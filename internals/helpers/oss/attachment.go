package helper

// FileChange describes what an update does to a record's stored blob.
type FileChange int

const (
	// FileUnchanged: the payload omitted the file, or re-sent the same
	// URL. The stored blob is retained.
	FileUnchanged FileChange = iota
	// FileStored: the record had no blob and the payload carries one.
	FileStored
	// FileReplaced: the record had blob A and the payload carries B.
	// A must be deleted after the row update commits.
	FileReplaced
)

// PlanFileChange decides the attachment transition for an update.
// prevURL is the currently stored public URL ("" if none), nextURL the
// URL of the freshly uploaded blob, and uploaded whether the request
// actually carried a file part.
func PlanFileChange(prevURL, nextURL string, uploaded bool) (FileChange, string) {
	if !uploaded {
		return FileUnchanged, ""
	}
	if prevURL == "" {
		return FileStored, ""
	}
	if prevURL == nextURL {
		return FileUnchanged, ""
	}
	return FileReplaced, prevURL
}
