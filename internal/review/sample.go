package review

import (
	"fmt"
	"sort"
	"strings"

	"github.com/grip-data/review-insights/internal/model"
)

// DefaultSampleSize bounds how many reviews feed one summarization call.
const DefaultSampleSize = 10

// PromptPlaceholder marks where the sampled reviews substitute into a
// prompt template.
const PromptPlaceholder = "{reviews}"

// defaultReviewWrapper hosts the review mapping when a caller-supplied
// template forgot the placeholder.
const defaultReviewWrapper = "\n\n<리뷰>\n" + PromptPlaceholder + "\n</리뷰>\n"

// DefaultHashtagPrompt is the built-in template for seller hashtag
// generation.
const DefaultHashtagPrompt = `
<페르소나>
너는 이커머스에서 판매자들을 관리하는 MD야. 판매자들의 마케팅, 홍보를 도와주는 역할을 해.
</페르소나>

<문제>
다음의 <리뷰>를 참조하여 구매자들의 반응은 어떤지, 그리고 판매자에 대한 긍정적인 소개를 생성해줘.
소개는 해시태그로 나타낼거야. 3개의 해시태그로 판매자를 소개하는 문구로 결과를 출력해줘. 각 해시태그는 10자 이내로 생성해줘.
</문제>

<예시>
>'#소통이잘되는 #사이즈딱맞아요 #고퀄리티가성비'
</예시>

<리뷰>
{reviews}
</리뷰>
`

// SelectSample picks up to limit reviews for summarization from the
// deduplicated sequence. The set re-sorts by a composite key, all
// descending: attached-image presence, text length, creation time,
// cost price. The sort is stable, so ties keep the incoming relative
// order. Fewer than limit records, down to zero, is valid output.
func SelectSample(reviews []model.ReviewRecord, limit int) []model.ReviewRecord {
	if limit <= 0 {
		limit = DefaultSampleSize
	}
	out := make([]model.ReviewRecord, len(reviews))
	copy(out, reviews)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.HasAttachedImage() != b.HasAttachedImage() {
			return a.HasAttachedImage()
		}
		if a.TextLength != b.TextLength {
			return a.TextLength > b.TextLength
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.CostPrice > b.CostPrice
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RenderPrompt substitutes the sampled reviews into the template at the
// {reviews} placeholder. Each review renders as a 1-based positional
// label ("1번째고객") mapped to its cleaned text, in sample order. A
// template without the placeholder gets the mapping appended inside a
// default wrapper instead of failing.
func RenderPrompt(template string, sample []model.ReviewRecord) string {
	var b strings.Builder
	for i, r := range sample {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d번째고객: %s", i+1, CleanText(r.Text))
	}
	mapping := b.String()

	if !strings.Contains(template, PromptPlaceholder) {
		template += defaultReviewWrapper
	}
	return strings.ReplaceAll(template, PromptPlaceholder, mapping)
}
