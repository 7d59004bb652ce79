package scraper

import "fmt"

// SiteAdapter isolates everything coupled to the target site's markup: the
// profile URL template, the wait selectors, and the extraction scripts. The
// markup is not a versioned contract — when it changes, only the adapter
// changes, never the orchestration in ProfileScraper.
type SiteAdapter interface {
	// Name identifies the adapter and its selector revision, e.g. "x.com/v1".
	Name() string
	// ProfileURL returns the page to navigate for a username.
	ProfileURL(username string) string
	// SummarySelector is the element whose presence means the profile header
	// rendered.
	SummarySelector() string
	// PostsSelector is the element whose presence means the post feed rendered.
	PostsSelector() string
	// SummaryScript returns a read-only script producing a profileSummary.
	SummaryScript(username string) string
	// PostsScript returns a read-only script producing up to limit rawPosts in
	// document order (the feed is reverse-chronological, so document order is
	// most-recent-first).
	PostsScript(limit int) string
}

// profileSummary is the shape the summary script returns.
type profileSummary struct {
	PostCount      string `json:"postCount"`
	AvatarURL      string `json:"avatarUrl"`
	FollowingCount string `json:"followingCount"`
	FollowerCount  string `json:"followerCount"`
	JoinedLabel    string `json:"joinedLabel"`
	Bio            string `json:"bio"`
}

// rawPost is the shape the posts script returns, before sentiment enrichment.
type rawPost struct {
	Text      string `json:"text"`
	PostedAt  string `json:"postedAt"`
	LikeCount string `json:"likeCount"`
}

// XAdapter scrapes x.com profile pages. Selector notes:
//   - ".r-n6v787" is the obfuscated class carrying the post-count header; it
//     breaks whenever the site rotates its class hashes.
//   - the joined-date label has no addressable selector at all, so it is
//     located by scanning every span for the "Joined" prefix.
type XAdapter struct{}

func (XAdapter) Name() string { return "x.com/v1" }

func (XAdapter) ProfileURL(username string) string {
	return "https://x.com/" + username
}

func (XAdapter) SummarySelector() string { return ".r-n6v787" }

func (XAdapter) PostsSelector() string { return "article" }

func (XAdapter) SummaryScript(username string) string {
	return fmt.Sprintf(`
		(function() {
			var posts = document.querySelector('.r-n6v787');
			var photo = document.querySelector('img[src*="profile_images"]');
			var following = document.querySelector('a[href="/%[1]s/following"] span');
			var followers = document.querySelector('a[href="/%[1]s/verified_followers"] span');
			var joined = Array.from(document.querySelectorAll('span')).find(function(s) {
				return s.textContent.indexOf('Joined') !== -1;
			});
			var bio = document.querySelector('div[data-testid="UserDescription"]');
			return {
				postCount:      posts ? posts.textContent : '0',
				avatarUrl:      photo ? photo.src : '',
				followingCount: following ? following.textContent : '0',
				followerCount:  followers ? followers.textContent : '0',
				joinedLabel:    joined ? joined.textContent : 'N/A',
				bio:            bio ? bio.innerText : ''
			};
		})()
	`, username)
}

func (XAdapter) PostsScript(limit int) string {
	return fmt.Sprintf(`
		(function() {
			return Array.from(document.querySelectorAll('article')).slice(0, %d).map(function(a) {
				var text = a.querySelector('div[lang]');
				var time = a.querySelector('time');
				var likes = a.querySelector('div[data-testid="like"] span');
				return {
					text:      text ? text.innerText : '',
					postedAt:  time ? (time.getAttribute('datetime') || '') : '',
					likeCount: likes ? likes.innerText : '0'
				};
			});
		})()
	`, limit)
}
