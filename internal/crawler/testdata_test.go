package crawler

// indexHTML is a trimmed collection index page. Links appear out of order,
// book 1 is listed twice, and there are chapter, intro and foreign links.
const indexHTML = `<!DOCTYPE html>
<html><head><title>Sahih al-Bukhari</title></head>
<body>
<div class="book_titles">
	<div class="book_title">
		<a href="/bukhari/2">
			<div class="book_number">2</div>
			<div class="english_book_name">Belief</div>
			<div class="arabic_book_name">كتاب الإيمان</div>
		</a>
	</div>
	<div class="book_title">
		<a href="/bukhari/1">
			<div class="book_number">1</div>
			<div class="english_book_name">Revelation</div>
			<div class="arabic_book_name">كتاب بدء الوحى</div>
		</a>
	</div>
	<div class="book_title">
		<a href="/bukhari/10"><div class="book_number">10</div><div class="arabic_book_name">كتاب الأذان</div></a>
	</div>
	<a href="/bukhari/1">1. Revelation (sidebar)</a>
	<a href="/bukhari/1/3">Chapter 3</a>
	<a href="/bukhari/introduction">Introduction</a>
	<a href="/muslim/5">Sahih Muslim 5</a>
</div>
</body></html>`

// bookHTML is a trimmed book page covering both container layouts.
const bookHTML = `<!DOCTYPE html>
<html><body>
<div class="actualHadithContainer">
	<div class="englishcontainer">
		<div class="hadith_narrated">Narrated 'Umar bin Al-Khattab:</div>
		<div class="text_details">
			I heard Allah's Messenger   saying,
			"The reward of deeds depends upon the intentions"
		</div>
	</div>
	<div class="arabic_hadith_full">
		<span class="arabic_sanad"> حَدَّثَنَا الْحُمَيْدِيُّ </span>
		<span class="arabic_text_details"> إِنَّمَا الأَعْمَالُ بِالنِّيَّاتِ </span>
	</div>
	<table class="hadith_reference"><tr><td>Reference</td><td>: Sahih al-Bukhari 1</td></tr></table>
</div>
<div class="actualHadithContainer">
	<div class="text_details">A duplicate of hadith one.</div>
	<div class="hadith_reference_sticky">Sahih al-Bukhari 1</div>
</div>
<div class="hadithTextContainers">
	<div class="arabic_text_details">حديث عربي فقط</div>
	<div class="hadith_reference_sticky">Sahih al-Bukhari 2</div>
</div>
<div class="actualHadithContainer">
	<div class="hadith_narrated">Narrated nobody:</div>
	<div class="hadith_reference">Sahih al-Bukhari 3</div>
</div>
<div class="hadithTextContainers">
	<div class="text_details">An unnumbered hadith.</div>
</div>
</body></html>`
