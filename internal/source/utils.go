package source

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

func newDocument(origin Origin, data []byte) Document {
	doc := Document{Origin: origin}
	var hadBOM bool
	doc.Data, hadBOM = removeBOM(data)
	if hadBOM {
		doc.Flags |= DocHadBOM
	}
	return doc
}
