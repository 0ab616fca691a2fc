package chat

func GetMessages(s State) []Message {
	result := make([]Message, len(s.Transcript))
	copy(result, s.Transcript)
	return result
}

func GetMessageCount(s State) int {
	return len(s.Transcript)
}

func GetLastMessage(s State) (Message, bool) {
	if len(s.Transcript) == 0 {
		return Message{}, false
	}
	return s.Transcript[len(s.Transcript)-1], true
}

// MessageAt returns the message at transcript position i.
func MessageAt(s State, i int) (Message, bool) {
	if i < 0 || i >= len(s.Transcript) {
		return Message{}, false
	}
	return s.Transcript[i], true
}

// IndexOf returns the transcript position of message id, or -1.
func IndexOf(s State, id string) int {
	for i, msg := range s.Transcript {
		if msg.ID == id {
			return i
		}
	}
	return -1
}

func ImagePending(s State, id string) bool {
	return s.ImageLoads[id]
}

// ImagePendingAt reports whether the image of the message at position i is
// still loading.
func ImagePendingAt(s State, i int) bool {
	msg, ok := MessageAt(s, i)
	if !ok {
		return false
	}
	return s.ImageLoads[msg.ID]
}

// HasImageEntryAt reports whether the tracker has ever held an entry for the
// message at position i.
func HasImageEntryAt(s State, i int) bool {
	msg, ok := MessageAt(s, i)
	if !ok {
		return false
	}
	_, exists := s.ImageLoads[msg.ID]
	return exists
}

// PendingImages returns the IDs of messages whose image is still loading, in
// transcript order.
func PendingImages(s State) []string {
	var ids []string
	for _, msg := range s.Transcript {
		if s.ImageLoads[msg.ID] {
			ids = append(ids, msg.ID)
		}
	}
	return ids
}
