package mailchimp

// SyncPayload is everything Mailchimp needs to know about one contact.
type SyncPayload struct {
	MemberIdentifier string
	EmailAddress     string
	Subscribe        bool
	MergeFields      map[string]string
	// Nil when the contact does not manage interests on the platform.
	Interests    map[string]bool
	ActiveTags   []string
	InactiveTags []string
}

func (p SyncPayload) MemberRequest() MemberRequest {
	request := MemberRequest{
		MemberIdentifier: p.MemberIdentifier,
		EmailAddress:     p.EmailAddress,
		Status:           StatusSubscribed,
		StatusIfNew:      StatusSubscribed,
		MergeFields:      p.MergeFields,
		Interests:        p.Interests,
	}

	if !p.Subscribe {
		request.Status = StatusUnsubscribed
		request.StatusIfNew = StatusUnsubscribed
	}

	return request
}

// TagsRequest asserts every tag of the payload. Inactive and removed tags
// that are also active are dropped so a tag is never both set and cleared.
func (p SyncPayload) TagsRequest(removedTags ...string) MemberTagsRequest {
	request := MemberTagsRequest{MemberIdentifier: p.MemberIdentifier, Tags: []MemberTag{}}

	active := make(map[string]bool, len(p.ActiveTags))
	for _, tag := range p.ActiveTags {
		active[tag] = true
	}

	cleared := make(map[string]bool)
	for _, tag := range append(append([]string{}, removedTags...), p.InactiveTags...) {
		if active[tag] || cleared[tag] {
			continue
		}
		cleared[tag] = true
		request.AddTag(tag, false)
	}

	for _, tag := range p.ActiveTags {
		request.AddTag(tag, true)
	}

	return request
}
