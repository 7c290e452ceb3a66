package extract

import (
	"fmt"
	"strings"
)

const sampleListingHTML = `<html><body>
<div class="list_area daily_all">
  <div class="col">
    <ul>
      <li>
        <div class="thumb"><a href="/webtoon/list.nhn?titleId=703846&weekday=mon"><img src="https://shared.example.com/703846.jpg"></a></div>
        <a href="/webtoon/list.nhn?titleId=703846&weekday=mon" class="title">여신강림</a>
      </li>
      <li>
        <div class="thumb"><a href="/webtoon/list.nhn?titleId=651673&weekday=wed"></a></div>
        <a href="/webtoon/list.nhn?titleId=651673&weekday=wed" class="title">유미의 세포들</a>
      </li>
      <li>
        <div class="thumb"><a href="/webtoon/list.nhn?weekday=thu"><img src="https://shared.example.com/x.jpg"></a></div>
        <a href="/webtoon/list.nhn?weekday=thu" class="title">No Id</a>
      </li>
      <li>
        <div class="thumb"><a href="/webtoon/list.nhn?titleId=714834&weekday=fri"><img src="https://shared.example.com/714834.jpg"></a></div>
        <a href="/webtoon/list.nhn?titleId=714834&weekday=fri" class="title"> 모죠의 일지 </a>
      </li>
    </ul>
  </div>
</div>
</body></html>`

// episodeRow renders one data row of an episode table.
func episodeRow(no int, title string) string {
	return fmt.Sprintf(`<tr>
  <td><a href="/webtoon/detail.nhn?titleId=714834&no=%[1]d&weekday=fri"><img src="https://shared.example.com/ep%[1]d.jpg"></a></td>
  <td class="title"><a href="/webtoon/detail.nhn?titleId=714834&no=%[1]d">%[2]s</a></td>
  <td><div class="rating_type"><strong>9.9%[1]d</strong></div></td>
  <td class="num">2018.01.%02[1]d</td>
</tr>`, no, title)
}

// episodePage renders an episode list page with the given rows.
func episodePage(hasNext bool, rows ...string) string {
	next := ""
	if hasNext {
		next = `<a href="/webtoon/list.nhn?titleId=714834&page=2" class="next"><span>다음</span></a>`
	}

	return `<html><body>
<table class="viewList">
  <tr><th>이미지</th><th>제목</th><th>별점</th><th>등록일</th></tr>
  ` + strings.Join(rows, "\n") + `
</table>
<div class="page_wrap"><a href="#" class="page"><span>1</span></a>` + next + `</div>
</body></html>`
}

const bannerRow = `<tr class="band_banner"><td colspan="4"><a href="/event"><img src="banner.jpg"></a></td></tr>`

const rowWithoutThumbnail = `<tr>
  <td><a href="/webtoon/detail.nhn?titleId=714834&no=77"></a></td>
  <td class="title"><a href="/webtoon/detail.nhn?titleId=714834&no=77">Missing Thumbnail</a></td>
  <td><strong>9.50</strong></td>
  <td class="num">2018.02.01</td>
</tr>`
