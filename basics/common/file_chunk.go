package common

// FileChunk struct is to hold one extracted chunk of a file content
// FileId is the identifier of the source file
// Data is the chunk content, chunk size length for all but the last chunk
// of the file
type FileChunk struct {
	FileId string `json:"fileId"`
	Data   []byte `json:"data"`
}

// NewFileChunk initialises a new FileChunk using the given information
func NewFileChunk(fileId string, data []byte) FileChunk {
	return FileChunk{
		FileId: fileId,
		Data:   data,
	}
}

// Size calculates the byte length of the chunk content
func (f FileChunk) Size() uint32 {
	return uint32(len(f.Data))
}
